package component

import (
	"fmt"
	"strings"
)

// Activity is the behavioural mode that selects which animation plays.
type Activity uint8

const (
	ActivityIdle Activity = iota
	ActivityMoving
	ActivityAttack
	ActivityDeath
	ActivityTakingDamage
)

var activityNames = map[Activity]string{
	ActivityIdle:         "idle",
	ActivityMoving:       "moving",
	ActivityAttack:       "attack",
	ActivityDeath:        "death",
	ActivityTakingDamage: "taking_damage",
}

// activityAliases maps manifest and sheet names onto activities. The sheet
// names ("Movement", "Taking damage") come from the original asset packs.
var activityAliases = map[string]Activity{
	"idle":          ActivityIdle,
	"moving":        ActivityMoving,
	"movement":      ActivityMoving,
	"attack":        ActivityAttack,
	"death":         ActivityDeath,
	"taking_damage": ActivityTakingDamage,
	"taking damage": ActivityTakingDamage,
	"takingdamage":  ActivityTakingDamage,
}

func (a Activity) String() string {
	if s, ok := activityNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Activity(%d)", uint8(a))
}

// ParseActivity resolves a manifest state name.
func ParseActivity(s string) (Activity, bool) {
	a, ok := activityAliases[strings.ToLower(strings.TrimSpace(s))]
	return a, ok
}

// ActivityState holds the single active Activity of an entity.
type ActivityState struct {
	Current Activity
}

var ActivityComponent = NewComponent[ActivityState]()
