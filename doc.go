/*
Dbengine is a CLI tool for managing tenant databases through the CloudPanel
clpctl tool.

Every tenant is identified by a gdps id. Its database and database user are
both named gdps-<gdps id>, and it is served from <node>.forever-host.xyz.

Usage:

	dbengine [command]

Available Commands:

	create      Create a tenant database and print its password
	export      Export a tenant database to a dump file
	import      Import a dump file into a tenant database
	delete      Delete one or more tenant databases
	provision   Create a tenant database and optionally seed it from a dump
	backup      Export several tenant databases into a directory
	password    Generate a database password
	config      Inspect the dbengine configuration

Examples:

	# Create the database for tenant 0001 on node myserver
	dbengine create myserver 0001

	# Dump it and load the dump back
	dbengine export 0001 /tmp/dump.sql
	dbengine import 0001 /tmp/dump.sql

	# Show what would run without touching clpctl
	dbengine --dry-run delete 0001

Commands run clpctl directly without a shell by default. Setting
executor.mode to "shell" in the configuration runs each call as a single
shell line instead, answering the db:delete prompt with an echo pipe.
*/
package main
