package config

import (
	"time"

	"go.trai.ch/stravex/internal/core/domain"
)

// Configfile represents the structure of the stravex.yaml configuration file.
// It is seeded with the defaults before decoding so that omitted keys keep
// their default values.
type Configfile struct {
	Version  string        `yaml:"version"`
	Entities EntitiesDTO   `yaml:"entities"`
	Layout   domain.Layout `yaml:"layout"`
	Timing   TimingDTO     `yaml:"timing"`
	Run      RunDTO        `yaml:"run"`
}

// EntitiesDTO is the entity catalog section.
// Both lists are left nil when the file omits them.
type EntitiesDTO struct {
	All      []string `yaml:"all"`
	Defaults []string `yaml:"defaults"`
}

// PollDTO is a bounded wait.
type PollDTO struct {
	Timeout  time.Duration `yaml:"timeout"`
	Interval time.Duration `yaml:"interval"`
}

// TimingDTO is the timing section. Durations use Go duration strings.
type TimingDTO struct {
	Attach        PollDTO `yaml:"attach"`
	Navigation    PollDTO `yaml:"navigation"`
	Selector      PollDTO `yaml:"selector"`
	Display       PollDTO `yaml:"display"`
	Retry         PollDTO `yaml:"retry"`
	Exists        PollDTO `yaml:"exists"`
	ViewChange    PollDTO `yaml:"view_change"`
	BaseInput     PollDTO `yaml:"base_input"`
	DisplayChange PollDTO `yaml:"display_change"`
	MenuChange    PollDTO `yaml:"menu_change"`
	DialogChange  PollDTO `yaml:"dialog_change"`
	FolderChange  PollDTO `yaml:"folder_change"`
	TabActive     PollDTO `yaml:"tab_active"`
	Dialog        PollDTO `yaml:"dialog"`

	InputSettle      time.Duration `yaml:"input_settle"`
	HotkeyPause      time.Duration `yaml:"hotkey_pause"`
	KeyInterval      time.Duration `yaml:"key_interval"`
	SelectInterval   time.Duration `yaml:"select_interval"`
	ModifierSettle   time.Duration `yaml:"modifier_settle"`
	TypeInterval     time.Duration `yaml:"type_interval"`
	SearchDelay      time.Duration `yaml:"search_delay"`
	ClearDelay       time.Duration `yaml:"clear_delay"`
	NavigationSettle time.Duration `yaml:"navigation_settle"`
	RowDwell         time.Duration `yaml:"row_dwell"`
	SaveSettle       time.Duration `yaml:"save_settle"`
	GracePeriod      time.Duration `yaml:"grace_period"`
}

// RunDTO is the run section.
type RunDTO struct {
	SelectBatch int    `yaml:"select_batch"`
	RowAdvance  int    `yaml:"row_advance"`
	ExportDir   string `yaml:"export_dir"`
}

// polls pairs every poll of the timing section with its config key.
func (t *TimingDTO) polls() map[string]*PollDTO {
	return map[string]*PollDTO{
		"attach":         &t.Attach,
		"navigation":     &t.Navigation,
		"selector":       &t.Selector,
		"display":        &t.Display,
		"retry":          &t.Retry,
		"exists":         &t.Exists,
		"view_change":    &t.ViewChange,
		"base_input":     &t.BaseInput,
		"display_change": &t.DisplayChange,
		"menu_change":    &t.MenuChange,
		"dialog_change":  &t.DialogChange,
		"folder_change":  &t.FolderChange,
		"tab_active":     &t.TabActive,
		"dialog":         &t.Dialog,
	}
}

// delays pairs every scalar delay of the timing section with its config key.
func (t *TimingDTO) delays() map[string]time.Duration {
	return map[string]time.Duration{
		"input_settle":      t.InputSettle,
		"hotkey_pause":      t.HotkeyPause,
		"key_interval":      t.KeyInterval,
		"select_interval":   t.SelectInterval,
		"modifier_settle":   t.ModifierSettle,
		"type_interval":     t.TypeInterval,
		"search_delay":      t.SearchDelay,
		"clear_delay":       t.ClearDelay,
		"navigation_settle": t.NavigationSettle,
		"row_dwell":         t.RowDwell,
		"save_settle":       t.SaveSettle,
		"grace_period":      t.GracePeriod,
	}
}

func newPollDTO(p domain.Poll) PollDTO {
	return PollDTO{Timeout: p.Timeout, Interval: p.Interval}
}

func (p PollDTO) toDomain() domain.Poll {
	return domain.Poll{Timeout: p.Timeout, Interval: p.Interval}
}

// newConfigfile seeds a Configfile with the values of cfg.
func newConfigfile(cfg *domain.Config) *Configfile {
	t := cfg.Timing
	return &Configfile{
		Layout: cfg.Layout,
		Timing: TimingDTO{
			Attach:        newPollDTO(t.Attach),
			Navigation:    newPollDTO(t.Navigation),
			Selector:      newPollDTO(t.Selector),
			Display:       newPollDTO(t.Display),
			Retry:         newPollDTO(t.Retry),
			Exists:        newPollDTO(t.Exists),
			ViewChange:    newPollDTO(t.ViewChange),
			BaseInput:     newPollDTO(t.BaseInput),
			DisplayChange: newPollDTO(t.DisplayChange),
			MenuChange:    newPollDTO(t.MenuChange),
			DialogChange:  newPollDTO(t.DialogChange),
			FolderChange:  newPollDTO(t.FolderChange),
			TabActive:     newPollDTO(t.TabActive),
			Dialog:        newPollDTO(t.Dialog),

			InputSettle:      t.InputSettle,
			HotkeyPause:      t.HotkeyPause,
			KeyInterval:      t.KeyInterval,
			SelectInterval:   t.SelectInterval,
			ModifierSettle:   t.ModifierSettle,
			TypeInterval:     t.TypeInterval,
			SearchDelay:      t.SearchDelay,
			ClearDelay:       t.ClearDelay,
			NavigationSettle: t.NavigationSettle,
			RowDwell:         t.RowDwell,
			SaveSettle:       t.SaveSettle,
			GracePeriod:      t.GracePeriod,
		},
		Run: RunDTO{
			SelectBatch: cfg.SelectBatch,
			RowAdvance:  cfg.RowAdvance,
			ExportDir:   cfg.ExportDir,
		},
	}
}

func (t *TimingDTO) toDomain() domain.Timing {
	return domain.Timing{
		Attach:        t.Attach.toDomain(),
		Navigation:    t.Navigation.toDomain(),
		Selector:      t.Selector.toDomain(),
		Display:       t.Display.toDomain(),
		Retry:         t.Retry.toDomain(),
		Exists:        t.Exists.toDomain(),
		ViewChange:    t.ViewChange.toDomain(),
		BaseInput:     t.BaseInput.toDomain(),
		DisplayChange: t.DisplayChange.toDomain(),
		MenuChange:    t.MenuChange.toDomain(),
		DialogChange:  t.DialogChange.toDomain(),
		FolderChange:  t.FolderChange.toDomain(),
		TabActive:     t.TabActive.toDomain(),
		Dialog:        t.Dialog.toDomain(),

		InputSettle:      t.InputSettle,
		HotkeyPause:      t.HotkeyPause,
		KeyInterval:      t.KeyInterval,
		SelectInterval:   t.SelectInterval,
		ModifierSettle:   t.ModifierSettle,
		TypeInterval:     t.TypeInterval,
		SearchDelay:      t.SearchDelay,
		ClearDelay:       t.ClearDelay,
		NavigationSettle: t.NavigationSettle,
		RowDwell:         t.RowDwell,
		SaveSettle:       t.SaveSettle,
		GracePeriod:      t.GracePeriod,
	}
}
