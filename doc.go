// Package wallet records personal income and expenses in a plain text file.
//
// A wallet is an ordered list of records, each with a date, a category, an
// amount and a free text comment. Records are kept in memory and persisted
// on request to a record file, one comma separated record per line:
//
//	2024-01-01,Доход,1000,salary
//	2024-01-02,Расход,12.5,lunch
//
// Only the Income and Expense categories contribute to the balance. Any
// other category is kept, listed and searchable.
//
// This package serves as the foundational logic for the `wlt` command-line
// tool.
package wallet
