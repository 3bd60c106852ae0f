package models

type ResumeAnalysis struct {
	ATSScore    int      `json:"atsScore"`
	Suggestions []string `json:"suggestions"`
}
