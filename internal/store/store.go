package store

// Store provides access to all storage repositories.
type Store struct {
	kv          KV
	snapshots   *SnapshotStore
	collections *CollectionStore
	credentials *CredentialsStore
}

func NewStore(kv KV) *Store {
	return &Store{
		kv:          kv,
		snapshots:   NewSnapshotStore(kv),
		collections: NewCollectionStore(kv),
		credentials: NewCredentialsStore(kv),
	}
}

func (s *Store) Snapshots() *SnapshotStore {
	return s.snapshots
}

func (s *Store) Collections() *CollectionStore {
	return s.collections
}

func (s *Store) Credentials() *CredentialsStore {
	return s.credentials
}

func (s *Store) Close() error {
	return s.kv.Close()
}
