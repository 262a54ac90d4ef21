// Package dataset defines the pre-aggregated season data that charts draw.
//
// # Overview
//
// A [Season] bundles every table and count the league report shows: the
// standings, cumulative points per player, scorer and assist counts,
// venues, monthly breakdowns and one [Player] drill-down per player. All
// aggregation happens upstream; this package only reads, validates and
// looks data up. Nothing here mutates its input.
//
// # File Formats
//
// Seasons are stored as JSON or TOML with snake_case keys:
//
//	{
//	  "name": "Futsal 2023",
//	  "standings": {"columns": ["Pos", "Player", ...], "rows": [["1", "Ana", ...]]},
//	  "goals": [{"label": "Ana", "value": 25}],
//	  "players": [{"name": "Ana", "summary": {...}}]
//	}
//
// Use [Load] to read a file (format chosen by extension) or [Decode] for any
// io.Reader. Every section is optional; charts check for the sections they
// need with [Season.Has].
//
// # Validation
//
// [Season.Validate] checks structural well-formedness (ragged tables,
// series whose length does not match the date axis, duplicate players) and
// reports problems as INVALID_DATASET errors before any drawing starts.
package dataset
