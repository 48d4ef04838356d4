package model

// Finding is one flattened secret-detection match.
type Finding struct {
	File    string
	RuleID  string
	Author  string
	Date    string
	Message string
	Entropy string
	Match   string
}

// FindingColumns is the CSV header of the normalized findings file.
var FindingColumns = []string{"File", "RuleID", "Author", "Date", "Message", "Entropy", "Match"}

func (x *Finding) Row() []string {
	return []string{x.File, x.RuleID, x.Author, x.Date, x.Message, x.Entropy, x.Match}
}

type NormalizeSummary struct {
	Files      int
	Rows       int
	Skipped    int
	OutputPath string
}
