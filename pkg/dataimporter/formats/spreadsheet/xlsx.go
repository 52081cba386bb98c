package spreadsheet

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSX is an Office Open XML workbook
type XLSX struct {
	Sheet
}

func (x *XLSX) ParseFile(reader io.Reader) error {
	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return err
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(workbook.GetSheetName(0))
	if err != nil {
		return err
	}

	x.Rows = rows

	return nil
}
