package domain

// SubjectCategory groups HSC courses by key learning area.
type SubjectCategory string

const (
	SubjectCategoryEnglish     SubjectCategory = "ENGLISH"
	SubjectCategoryMathematics SubjectCategory = "MATHEMATICS"
	SubjectCategoryScience     SubjectCategory = "SCIENCE"
	SubjectCategoryHSIE        SubjectCategory = "HSIE"
	SubjectCategoryTAS         SubjectCategory = "TAS"
	SubjectCategoryCAPA        SubjectCategory = "CAPA"
	SubjectCategoryPDHPE       SubjectCategory = "PDHPE"
	SubjectCategoryLanguages   SubjectCategory = "LANGUAGES"
	SubjectCategoryVET         SubjectCategory = "VET"
)

func (c SubjectCategory) String() string { return string(c) }

func (c SubjectCategory) IsValid() bool {
	switch c {
	case SubjectCategoryEnglish, SubjectCategoryMathematics, SubjectCategoryScience,
		SubjectCategoryHSIE, SubjectCategoryTAS, SubjectCategoryCAPA,
		SubjectCategoryPDHPE, SubjectCategoryLanguages, SubjectCategoryVET:
		return true
	}
	return false
}

// Subject is an entry of the read-only HSC course catalog.
type Subject struct {
	Code     string
	Name     string
	Category SubjectCategory
	Units    int
}
