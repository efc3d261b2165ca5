package guitar

import "github.com/vovakirdan/guitar-chase/internal/config"

// Rules are the level progression constants.
type Rules struct {
	CatchTarget  int // catches needed to clear a level
	LevelCount   int // last level; clearing it restarts the run
	LevelSeconds int // countdown per level
	BaseSpeed    int // guitar speed on level 1
	SpeedStep    int // guitar speed added per level
}

// DefaultRules returns the classic ruleset: 10 catches, 15 levels, three minutes each.
func DefaultRules() Rules {
	return RulesFrom(config.Default().Rules)
}

// RulesFrom converts the YAML rules section.
func RulesFrom(rc config.RulesConfig) Rules {
	return Rules{
		CatchTarget:  rc.CatchTarget,
		LevelCount:   rc.LevelCount,
		LevelSeconds: rc.LevelSeconds,
		BaseSpeed:    rc.BaseSpeed,
		SpeedStep:    rc.SpeedStep,
	}
}

// SpeedAt returns the guitar speed for a level.
func (r Rules) SpeedAt(level int) int {
	return r.BaseSpeed + (level-1)*r.SpeedStep
}
