// Command textlab is a workbench for ad-hoc text analysis over a configured
// workspace: word/sentence statistics, regex search, file merge and backup,
// text and CSV profiling, document similarity, and an analysis history.
package main
