package filters

// Selection is the current exam/year/subject choice. An empty string
// means "All": no constraint on that axis.
type Selection struct {
	Exam    string
	Year    string
	Subject string
}

// IsEmpty reports whether no field is set at all.
func (s Selection) IsEmpty() bool {
	return s.Exam == "" && s.Year == "" && s.Subject == ""
}

// ReadyPolicy decides when a selection is complete enough to load the
// question list. First-time users are gated behind it so they don't pull
// the entire corpus.
type ReadyPolicy int

const (
	// RequireAll needs exam, year and subject.
	RequireAll ReadyPolicy = iota
	// RequireExamSubject needs exam and subject; year stays optional.
	RequireExamSubject
)

// Ready reports whether sel satisfies the policy.
func (p ReadyPolicy) Ready(sel Selection) bool {
	switch p {
	case RequireExamSubject:
		return sel.Exam != "" && sel.Subject != ""
	default:
		return sel.Exam != "" && sel.Year != "" && sel.Subject != ""
	}
}

// Missing lists the field names the policy still requires.
func (p ReadyPolicy) Missing(sel Selection) []string {
	var out []string
	if sel.Exam == "" {
		out = append(out, "exam")
	}
	if p == RequireAll && sel.Year == "" {
		out = append(out, "year")
	}
	if sel.Subject == "" {
		out = append(out, "subject")
	}
	return out
}

// Catalog is the server-declared set of valid filter values.
type Catalog struct {
	Exams    []string
	Years    []int
	Subjects []string
}
