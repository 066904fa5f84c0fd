package main

// lastIncidentSessionKey stores the ID of the session's most recently
// dispatched incident so the history table can highlight it.
const lastIncidentSessionKey = "lastIncidentID"
