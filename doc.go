// Package analyzer provides the types and functions behind the pfa
// portfolio dashboard. It turns a brokerage portfolio export into a
// dashboard: summary figures, sector and market capitalization allocations,
// top gainers and losers, and a holdings table that can be searched, sorted
// and exported.
//
// The core functionalities include:
//   - Exact values: Money, Quantity and Percent keep every digit they are
//     given, display formatting (lakh and crore notation) is applied only when
//     printing.
//   - Holdings view: View keeps the filtered and sorted projection of the
//     holdings consistent with the search query and the sort column.
//   - Import/Export: the CSV export of the displayed holdings and JSON
//     portfolio documents.
//   - Session: the lifecycle of one dashboard, from file selection to
//     analysis and reset.
//
// This package serves as the foundational logic for the `pfa` command-line
// tool.
package analyzer
