package report

import (
	"regexp"
	"strconv"
)

// KnownCertifications are the credentials reported as individual flags, in
// column order. Anything else counts towards Others.
var KnownCertifications = []string{
	"CISA", "CEH", "ISO", "CHFI", "IDEA", "QualifiedIA", "CBIA", "CIA", "CPA", "CA",
}

var smrPattern = regexp.MustCompile(`(?i)^\s*SMR\s*(?:level|lvl)?\s*(\d+)\s*$`)

// CertificationSummary is the fixed-field view of a certification list.
type CertificationSummary struct {
	SMRLevel int
	Flags    map[string]int
	Others   int
}

// SMRLevel extracts N from names like "SMR Level N". It reports false for
// anything else, including level 0.
func SMRLevel(name string) (int, bool) {
	m := smrPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	level, err := strconv.Atoi(m[1])
	if err != nil || level <= 0 {
		return 0, false
	}
	return level, true
}

// SummarizeCertifications reduces certification names to the fixed fields.
// When several SMR levels are listed the last one wins.
func SummarizeCertifications(names []string) CertificationSummary {
	s := CertificationSummary{Flags: make(map[string]int, len(KnownCertifications))}
	for _, c := range KnownCertifications {
		s.Flags[c] = 0
	}

	for _, name := range names {
		if level, ok := SMRLevel(name); ok {
			s.SMRLevel = level
			continue
		}
		if _, known := s.Flags[name]; known {
			s.Flags[name] = 1
			continue
		}
		s.Others++
	}
	return s
}

// RMGCertification renders the SMR level for the employee table.
func (s CertificationSummary) RMGCertification() string {
	if s.SMRLevel == 0 {
		return "-"
	}
	return "Level " + strconv.Itoa(s.SMRLevel)
}
