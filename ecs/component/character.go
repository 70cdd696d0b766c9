package component

import "fmt"

type Class uint8

const (
	ClassWarrior Class = iota
	ClassMage
	ClassFireMage
	ClassArcher
)

var classNames = [...]string{"warrior", "mage", "fire_mage", "archer"}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

func ParseClass(s string) (Class, error) {
	for i, name := range classNames {
		if name == s {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("unknown class %q", s)
}

type Gender uint8

const (
	GenderCringe Gender = iota
	GenderBased
)

func (g Gender) String() string {
	if g == GenderCringe {
		return "cringe"
	}
	return "based"
}

func ParseGender(s string) (Gender, error) {
	switch s {
	case "cringe":
		return GenderCringe, nil
	case "based":
		return GenderBased, nil
	}
	return 0, fmt.Errorf("unknown gender %q", s)
}

// Character selects the sprite family an entity is drawn with.
type Character struct {
	Class  Class
	Gender Gender
}

// Key is the catalog key for the character's animation sets.
func (c Character) Key() string {
	return CharacterKey(c.Class, c.Gender)
}

// CharacterKey builds "{class}_{gender}".
func CharacterKey(c Class, g Gender) string {
	return c.String() + "_" + g.String()
}

var CharacterComponent = NewComponent[Character]()
