// Package constants provides shared constants used throughout the podium codebase.
// This includes dataset file names, the canonical date layout, fixed edition
// dates, and file permissions that should be consistent across the pipeline.
package constants

// Legacy dataset file names, relative to the legacy data directory
const (
	LegacyAthleteBioFile   = "olympic_athlete_bio.csv"
	LegacyEventResultsFile = "olympic_athlete_event_results.csv"
	LegacyCountryFile      = "olympics_country.csv"
	LegacyGamesFile        = "olympics_games.csv"
)

// New-games dataset file names, relative to the new data directory
const (
	NewAthletesFile   = "athletes.csv"
	NewEventsFile     = "events.csv"
	NewMedallistsFile = "medallists.csv"
	NewNOCsFile       = "nocs.csv"
	NewTeamsFile      = "teams.csv"
)

// Output naming
const (
	// OutputPrefix is prepended to every rewritten legacy table
	OutputPrefix = "new_"

	// MedalTallyFile is the summary table written next to the merged tables
	MedalTallyFile = "new_medal_tally.csv"
)

// Date handling
const (
	// DateLayout is the canonical output layout for every normalized date (e.g. 02-Jan-2006)
	DateLayout = "02-Jan-2006"

	// EditionInputLayout is how day/month pieces of edition date ranges are written
	EditionInputLayout = "2 January 2006"

	// RangeSeparator joins the start and end of a formatted competition range
	RangeSeparator = " to "
)

// Age bounds outside of which a computed age is treated as unknown
const (
	MinPlausibleAge = 10
	MaxPlausibleAge = 99
)

// Merge defaults
const (
	// DefaultNewEditionID is the edition id new-games results are attached to
	DefaultNewEditionID = "63"

	// CollisionMarker is appended to a registry key until it no longer collides
	CollisionMarker = "TEMP"
)

// FixedEditionDates holds editions whose dates are not derivable from the
// games table and are set directly: name -> {start, end}.
var FixedEditionDates = map[string][2]string{
	"2024 Summer Olympics": {"26-Jul-2024", "11-Aug-2024"},
	"2026 Winter Olympics": {"06-Feb-2026", "22-Feb-2026"},
}

// Sport aliases applied to new-games discipline names so they line up with
// legacy sport naming.
var SportAliases = map[string]string{
	"Trampoline Gymnastics": "Trampolining",
	"Equestrian":            "Equestrian Eventing",
}

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
