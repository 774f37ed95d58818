// Package services holds the tracker's business logic between the HTTP/CLI
// surfaces and the store.
//
//	Handlers / CLI
//	    │
//	    ▼
//	    ├── LibraryService ─────► Store, Scheduler, LibraryClient
//	    ├── CollectionService ──► Store
//	    └── CredentialsService ─► Store
//
// # LibraryService
//
// LoadLibrary serves the cached snapshot while it is younger than the freshness
// window and belongs to the requested Steam id. Otherwise it runs an
// aggregation:
//
//  1. fetch the owned games (a failure here fails the call)
//  2. submit one schema and one player-state fetch per game to the scheduler
//  3. merge each game with Merge; a failed schema fetch leaves the game empty,
//     a failed state fetch leaves every achievement locked
//  4. drop games without achievements and sort the rest by name with a
//     case-insensitive collator, keeping library order for equal names
//  5. persist the snapshot, unless a newer run started meanwhile
//
// Each run takes a generation number under the service mutex. ForceRefresh
// clears the cache in the same critical section, and the save is skipped when
// the run's generation is no longer the current one.
//
// # CollectionService
//
// Collections are stored as one ordered list. Every mutation loads the list,
// changes it and writes it back under a mutex. AddEntry creates the collection
// when it does not exist and ignores an (appid, apiname) already present.
// Delete of an unknown collection succeeds. Export renders the collections as
// an xlsx workbook.
package services
