package model

// SchemaVersion identifies the persisted blob layout.
const SchemaVersion = "1.0"

// Period filter values.
const (
	PeriodAll       = "all"
	PeriodThisMonth = "thisMonth"
	PeriodLastMonth = "lastMonth"
)

// CategoryFilterAll passes every category through the category filter.
const CategoryFilterAll = "all"

// Sort keys.
const (
	SortByDate     = "date"
	SortByAmount   = "amount"
	SortByCategory = "category"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filters holds the persisted list-filter preferences.
type Filters struct {
	Category    string `json:"category"` // category id or "all"
	Period      string `json:"period"`
	SearchQuery string `json:"searchQuery"`
}

// Sort holds the persisted sort preference.
type Sort struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

// Settings aggregates the persisted view preferences.
type Settings struct {
	Filters Filters `json:"filters"`
	Sort    Sort    `json:"sort"`
}

// AppState is the root persisted aggregate. The whole value is serialized
// as one blob; readers never observe a partially written state.
type AppState struct {
	Expenses      []Expense `json:"expenses"`
	Settings      Settings  `json:"settings"`
	SchemaVersion string    `json:"schemaVersion"`
	Backup        []Expense `json:"backup"` // pre-mutation snapshot, single slot
}

// DefaultSettings returns the filter and sort preferences used on first run.
func DefaultSettings() Settings {
	return Settings{
		Filters: Filters{
			Category:    CategoryFilterAll,
			Period:      PeriodAll,
			SearchQuery: "",
		},
		Sort: Sort{
			Key:       SortByDate,
			Direction: SortDesc,
		},
	}
}

// DefaultState returns the AppState created on first access when no
// persisted blob exists.
func DefaultState() *AppState {
	return &AppState{
		Expenses:      []Expense{},
		Settings:      DefaultSettings(),
		SchemaVersion: SchemaVersion,
		Backup:        []Expense{},
	}
}

// Normalize repairs holes left by older or hand-edited blobs so the rest of
// the application can rely on non-nil slices and a known schema version.
func (s *AppState) Normalize() {
	if s.Expenses == nil {
		s.Expenses = []Expense{}
	}
	if s.Backup == nil {
		s.Backup = []Expense{}
	}
	if s.SchemaVersion == "" {
		s.SchemaVersion = SchemaVersion
	}
	defaults := DefaultSettings()
	if s.Settings.Filters.Category == "" {
		s.Settings.Filters.Category = defaults.Filters.Category
	}
	if s.Settings.Filters.Period == "" {
		s.Settings.Filters.Period = defaults.Filters.Period
	}
	if s.Settings.Sort.Key == "" {
		s.Settings.Sort.Key = defaults.Sort.Key
	}
	if s.Settings.Sort.Direction == "" {
		s.Settings.Sort.Direction = defaults.Sort.Direction
	}
}
