package main

import "eventboard/cmd/eventboard/cmd"

// @title eventboard API
// @version 1.0
// @description Event listing, attendee applications and host review backed by Postgres and Supabase Storage.
// @BasePath /
func main() {
	cmd.Execute()
}
