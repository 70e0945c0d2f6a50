package system

import (
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/beat-fighter/parameter"
	"github.com/lixenwraith/beat-fighter/status"
)

// ComboConfig tunes combo progression and crit stacks
type ComboConfig struct {
	ResetTime     float64 `yaml:"reset_time"`
	MaxLevel      int     `yaml:"max_level"`
	ShotsPerLevel int     `yaml:"shots_per_level"`
	MaxCritStacks int     `yaml:"max_crit_stacks"`
	CritCost      int     `yaml:"crit_cost"`
}

// DefaultComboConfig returns the reference tuning
func DefaultComboConfig() ComboConfig {
	return ComboConfig{
		ResetTime:     parameter.ComboResetTime,
		MaxLevel:      parameter.MaxComboLevel,
		ShotsPerLevel: parameter.ShotsPerComboLevel,
		MaxCritStacks: parameter.MaxCritStacks,
		CritCost:      parameter.CritCostPerStack,
	}
}

// Combo tracks the on-beat streak, combo level and banked crit stacks
type Combo struct {
	cfg ComboConfig

	level        int
	streak       int
	shotsInLevel int
	critStacks   int

	// Armed by a miss, cleared by a hit; reaching zero resets everything
	resetTimer float64
	resetArmed bool

	mLevel  *atomic.Int64
	mStreak *atomic.Int64
}

// NewCombo creates an empty combo; reg may be nil
func NewCombo(cfg ComboConfig, reg *status.Registry) *Combo {
	if cfg.ShotsPerLevel <= 0 {
		cfg.ShotsPerLevel = 1
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Combo{
		cfg:     cfg,
		mLevel:  reg.Counters.Get("combo.level"),
		mStreak: reg.Counters.Get("combo.streak"),
	}
}

// Name returns system name
func (c *Combo) Name() string {
	return "combo"
}

// RegisterHit records an on-beat shot
// Level progress stops at the max level while the streak keeps counting
func (c *Combo) RegisterHit() {
	c.streak++
	if c.level < c.cfg.MaxLevel {
		c.shotsInLevel++
		if c.shotsInLevel >= c.cfg.ShotsPerLevel {
			c.level++
			c.shotsInLevel = 0
		}
	}
	c.resetArmed = false
	c.publish()
}

// RegisterMiss clears the combo and arms the inactivity reset
func (c *Combo) RegisterMiss() {
	c.clear()
	c.resetTimer = c.cfg.ResetTime
	c.resetArmed = true
}

// UseCrit trades combo levels for a crit stack
func (c *Combo) UseCrit() bool {
	if c.critStacks >= c.cfg.MaxCritStacks || c.level < c.cfg.CritCost {
		return false
	}
	c.critStacks++
	c.level -= c.cfg.CritCost
	c.publish()
	log.Debug("Crit stack bought", "stacks", c.critStacks, "level", c.level)
	return true
}

// ConsumeCrit returns and clears the banked crit stacks
func (c *Combo) ConsumeCrit() int {
	stacks := c.critStacks
	c.critStacks = 0
	return stacks
}

// Update runs the inactivity reset timer
func (c *Combo) Update(dt float64) {
	if !c.resetArmed {
		return
	}
	c.resetTimer -= dt
	if c.resetTimer <= 0 {
		c.resetArmed = false
		c.clear()
	}
}

func (c *Combo) clear() {
	c.level = 0
	c.streak = 0
	c.shotsInLevel = 0
	c.critStacks = 0
	c.publish()
}

func (c *Combo) publish() {
	c.mLevel.Store(int64(c.level))
	c.mStreak.Store(int64(c.streak))
}

// Level returns the combo multiplier level
func (c *Combo) Level() int {
	return c.level
}

// Streak returns consecutive on-beat shots
func (c *Combo) Streak() int {
	return c.streak
}

// CritStacks returns banked crit stacks
func (c *Combo) CritStacks() int {
	return c.critStacks
}

// Progress returns the fraction of the way to the next level, 0..1
func (c *Combo) Progress() float64 {
	return float64(c.shotsInLevel) / float64(c.cfg.ShotsPerLevel)
}

// ResetPending reports whether the inactivity reset is armed
func (c *Combo) ResetPending() bool {
	return c.resetArmed
}
