// Package cmd implements the cruzak command line interface.
//
// Commands are plain *cli.Command values provided to fx in the "commands"
// group and mounted under the root command by Run:
//
//	cruzak import   load the workbook into the database
//	cruzak preview  dry run against an in-memory sink
//	cruzak schema   print or apply the table DDL
//
// Settings resolve in order of precedence: command flags, CRUZAK_DB_*
// environment variables, the config file and finally built-in defaults.
package cmd
