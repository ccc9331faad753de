// Package nscache implements a namespaced, hierarchical cache.
//
// A Cache owns one nested document addressed by dot-separated paths
// ("user.profile.name"). Every mutation persists a full snapshot of the
// document through a chain of storage backends and then notifies the bound
// observers.
//
// Components:
//   - document: the in-memory tree and the path accessor.
//   - backend.Chain: ordered fallback over Primary, Legacy, Attribute and
//     Null backends. The first backend able to serve a call wins.
//   - codec.Doc: (de)serializes the document (JSON by default).
//   - provider.Provider: the byte stores behind backends (Redis, bbolt,
//     SQLite, BigCache, Ristretto, memory).
//
// Persistence is best-effort: with no working backend the cache still works
// in memory and Sync reports false.
//
// Usage:
//
//	c, _ := nscache.New(ctx, nscache.Options{
//	    Name: "settings",
//	    Backends: []backend.Backend{
//	        backend.Primary(redisProvider),
//	        backend.Legacy(boltProvider, "example.com"),
//	    },
//	})
//	c.Bind(func(doc document.Document) { log.Println("synced", doc.Native()) })
//	c.Set(ctx, "user.profile.name", "Ana")
//
// A Cache is not safe for concurrent use.
package nscache
