// Package schedule translates human-written schedule descriptions into
// five-field cron expressions.
//
// Accepted input ranges from literal cron expressions, which are returned
// unchanged, to loose phrasings such as
//
//	every 15 minutes
//	every hour at :30
//	every day at 9am
//	mon, wed, fri at 8am
//	mon-fri 9am
//	weekends in the afternoon
//	first of the month at noon
//	on the 15th
//
// Words that carry no schedule information are ignored, so
// "please run this on mondays at 9am" parses like "mondays at 9am".
// Values that look like a time, interval or day of the month but are out
// of range are always reported.
//
// Parse returns the first problem as an *Error; Validate returns all of
// them as Diagnostics. Both are safe for concurrent use.
package schedule
