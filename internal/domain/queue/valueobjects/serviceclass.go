package valueobjects

import "fmt"

// ServiceClass determines queue precedence: priority tickets are always
// served before regular ones.
type ServiceClass string

const (
	ClassRegular  ServiceClass = "regular"
	ClassPriority ServiceClass = "priority"
)

var validServiceClasses = map[ServiceClass]bool{
	ClassRegular:  true,
	ClassPriority: true,
}

func (sc ServiceClass) String() string {
	return string(sc)
}

func (sc ServiceClass) IsValid() bool {
	return validServiceClasses[sc]
}

func (sc ServiceClass) IsPriority() bool {
	return sc == ClassPriority
}

// DefaultWeight returns the sort weight implied by the class: 1 for
// priority, 0 for regular. Used only for serve-order tie-breaking.
func (sc ServiceClass) DefaultWeight() int {
	if sc == ClassPriority {
		return 1
	}
	return 0
}

func NewServiceClass(s string) (ServiceClass, error) {
	sc := ServiceClass(s)
	if !sc.IsValid() {
		return "", fmt.Errorf("invalid service class: %s", s)
	}
	return sc, nil
}
