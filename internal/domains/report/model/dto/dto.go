package dto

// Export is a generated workbook. URL is set once it has been archived,
// otherwise Data carries the file for download.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
	URL         string
}

func (e *Export) Archived() bool {
	return e.URL != ""
}

type ExportResponse struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}

func (r *ExportResponse) FromExport(export Export) {
	r.FileName = export.FileName
	r.URL = export.URL
}
