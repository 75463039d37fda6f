// Package services holds the routing engine of the dispatch service.
//
// A TrackNetwork stores bidirectional connections between stations and is
// searched with ShortestPath (Dijkstra). A Dispatcher moves one train at a
// time along the shortest path, enforcing capacity against the CargoLedger
// and appending one MovementRecord per hop to a TravelLog.
//
// RunSimulation drives a whole plan of moves on a private copy of the
// trains and a fresh TravelLog, so several runs may share one network.
package services
