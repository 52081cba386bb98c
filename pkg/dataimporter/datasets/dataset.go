package datasets

type DataSet struct {
	Identifier    string
	DataSourceRef string `json:"-"`
	Format        DataSetFormat

	Provider Provider

	Source       string
	UnpackBundle BundleFormat

	// ISO-8601 duration, importer default when empty
	Timeout string
}

type DataSetFormat string

const (
	DataSetFormatXLS  DataSetFormat = "xls"
	DataSetFormatXLSX DataSetFormat = "xlsx"
)

type Provider struct {
	Name    string
	Website string
}

type BundleFormat string

const (
	BundleFormatNone BundleFormat = "none"
	BundleFormatZIP  BundleFormat = "zip"
)
