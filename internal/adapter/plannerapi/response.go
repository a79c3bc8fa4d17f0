package plannerapi

import "time"

type apiSelection struct {
	ID          string    `json:"id"`
	SubjectCode string    `json:"subject_code"`
	SubjectName string    `json:"subject_name"`
	Category    *string   `json:"category"`
	Reason      *string   `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

type apiSelectionList struct {
	Selections []apiSelection `json:"selections"`
}

type apiCreateSelection struct {
	SubjectCode string  `json:"subject_code"`
	SubjectName string  `json:"subject_name"`
	Category    *string `json:"category,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

type apiSubject struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Units    int    `json:"units"`
}

type apiSubjectList struct {
	Subjects []apiSubject `json:"subjects"`
}

type apiError struct {
	Error string `json:"error"`
}
