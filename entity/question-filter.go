package entity

// QuestionFilter narrows a question list. Empty fields are ignored, so the
// zero value matches every question.
type QuestionFilter struct {
	MainField        string   `json:"mainField,omitempty"`
	SubField         string   `json:"subField,omitempty"`
	Occupation       string   `json:"occupation,omitempty"`
	FamilyType       string   `json:"familyType,omitempty"`
	Interest         string   `json:"interest,omitempty"`
	MonthlyIncome    string   `json:"montlyIncome,omitempty"`
	Assets           string   `json:"assets,omitempty"`
	IncomeManagement string   `json:"incomeManagement,omitempty"`
	CreatedBy        string   `json:"createdBy,omitempty"`
	Tags             []string `json:"tags,omitempty"`
}

func (f QuestionFilter) IsEmpty() bool {
	return f.MainField == "" && f.SubField == "" && f.Occupation == "" &&
		f.FamilyType == "" && f.Interest == "" && f.MonthlyIncome == "" &&
		f.Assets == "" && f.IncomeManagement == "" && f.CreatedBy == "" &&
		len(f.Tags) == 0
}
