// Command rosterlink compares two player-roster JSON datasets and reports
// which source players are missing from the target, which records are
// duplicated within each dataset, and which identity groups span both files.
package main
