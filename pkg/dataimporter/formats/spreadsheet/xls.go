package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/extrame/xls"
)

var ErrInvalidWorkbook = errors.New("not a readable xls workbook")

// XLS is a legacy (BIFF) Excel workbook
type XLS struct {
	Sheet
}

// ParseFile reads the first worksheet. The xls library panics on some corrupt BIFF records,
// those panics come back as ErrInvalidWorkbook.
func (x *XLS) ParseFile(reader io.Reader) (err error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidWorkbook, recovered)
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(body), "utf-8")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidWorkbook, err)
	}
	// No Workbook or Book stream in the container
	if workbook == nil {
		return fmt.Errorf("%w: no workbook stream", ErrInvalidWorkbook)
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return fmt.Errorf("%w: no sheets", ErrInvalidWorkbook)
	}

	// Only a header row, or nothing at all
	if sheet.MaxRow == 0 {
		x.Rows = [][]string{}
		return nil
	}

	// Missing rows come back as nil, sheet.Row panics on them
	x.Rows = workbook.ReadAllCells(int(sheet.MaxRow) + 1)

	return nil
}
