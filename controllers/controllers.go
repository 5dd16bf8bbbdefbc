package controllers

import (
	"clinicdesk/state"
	"clinicdesk/store"
)

// Store and State are shared by every controller. Setup wires them once at
// startup (and per-test in the handler tests).
var (
	Store *store.Store
	State *state.State
)

func Setup(st *store.Store, s *state.State) {
	Store = st
	State = s
}
