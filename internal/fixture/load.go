package fixture

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/sourcegraph/conc/pool"
	"gopkg.in/yaml.v3"

	"github.com/meatsuits/bountyboard/pkg/cerr"
	"github.com/meatsuits/bountyboard/pkg/storage"
)

const (
	AgentsDocument   = "agents.yaml"
	WorkersDocument  = "workers.yaml"
	BountiesDocument = "bounties.yaml"
	ClaimsDocument   = "claims.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

// EmbeddedStorage exposes the built-in fixture documents as a read-only
// Storage rooted at the document directory.
func EmbeddedStorage() storage.Storage {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("fixture: embedded data missing: %v", err))
	}
	return storage.NewFSStorage(sub)
}

// Default loads the built-in fixture.
func Default(ctx context.Context) (*Store, error) {
	return Load(ctx, EmbeddedStorage(), "")
}

// Load reads the four fixture documents under prefix concurrently, then
// validates the resulting store.
func Load(ctx context.Context, s storage.Storage, prefix string) (*Store, error) {
	var st Store
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		return readDocument(ctx, s, path.Join(prefix, AgentsDocument), &st.agents)
	})
	p.Go(func(ctx context.Context) error {
		return readDocument(ctx, s, path.Join(prefix, WorkersDocument), &st.workers)
	})
	p.Go(func(ctx context.Context) error {
		return readDocument(ctx, s, path.Join(prefix, BountiesDocument), &st.bounties)
	})
	p.Go(func(ctx context.Context) error {
		return readDocument(ctx, s, path.Join(prefix, ClaimsDocument), &st.claims)
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return &st, nil
}

func readDocument[T any](ctx context.Context, s storage.Storage, p string, dst *[]T) error {
	data, err := s.Read(ctx, p)
	if err != nil {
		return cerr.WrapStorageReadError(p, err)
	}
	var items []T
	if err := yaml.Unmarshal(data, &items); err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to unmarshal %s: %w", p, err))
	}
	*dst = items
	return nil
}

// Export writes the store as the four fixture documents under prefix, in
// the format Load reads.
func Export(ctx context.Context, st *Store, dst storage.Storage, prefix string) error {
	docs := []struct {
		name  string
		items any
	}{
		{AgentsDocument, st.agents},
		{WorkersDocument, st.workers},
		{BountiesDocument, st.bounties},
		{ClaimsDocument, st.claims},
	}
	for _, doc := range docs {
		data, err := yaml.Marshal(doc.items)
		if err != nil {
			return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal %s: %w", doc.name, err))
		}
		p := path.Join(prefix, doc.name)
		if err := dst.Write(ctx, p, data); err != nil {
			return cerr.WrapStorageWriteError(p, err)
		}
	}
	return nil
}
