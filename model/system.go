package model

// NotationSystem identifies which of the five coexisting pitch systems
// a stave is written in. The same letter means different things in
// different systems (Sargam D is degree 6, Western D is degree 2), so
// a system must be chosen before any pitch lookup happens.
type NotationSystem int

const (
	SystemNumber NotationSystem = iota
	SystemWestern
	SystemSargam
	SystemBhatkhande
	SystemTabla
)

var systemNames = [...]string{"number", "western", "sargam", "bhatkhande", "tabla"}

func (s NotationSystem) String() string {
	if s < 0 || int(s) >= len(systemNames) {
		return "unknown"
	}
	return systemNames[s]
}

func (s NotationSystem) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *NotationSystem) UnmarshalJSON(b []byte) error {
	i, err := unmarshalName(b, systemNames[:], "notation system")
	if err != nil {
		return err
	}
	*s = NotationSystem(i)
	return nil
}

// SystemFromName maps a directive value like "sargam" back to a system.
func SystemFromName(name string) (NotationSystem, bool) {
	for i, n := range systemNames {
		if n == name {
			return NotationSystem(i), true
		}
	}
	return SystemNumber, false
}

// AllSystems lists every system in the classifier's tie-break order:
// Tabla, Sargam, Number, Western, Bhatkhande.
func AllSystems() []NotationSystem {
	return []NotationSystem{SystemTabla, SystemSargam, SystemNumber, SystemWestern, SystemBhatkhande}
}
