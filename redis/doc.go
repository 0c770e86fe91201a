// Package redis provides a typed convenience layer over go-redis: raw
// configuration (host, port, password, db) becomes a managed connection,
// and strongly-typed helpers for string, hash, list, set, sorted-set,
// and JSON/struct persistence forward to the underlying commands.
//
// # Connecting
//
// The Connector is the entry point. It is an immutable value with
// chainable setters that produces either a one-shot lazy client or a
// managed connection:
//
//	conn, err := redis.NewConnector().
//	    WithHost("localhost").
//	    WithPort(6379).
//	    WithDB(2).
//	    Connect(ctx)
//
// A Conn is safe for concurrent use and reconnects on transient network
// loss; reconnection is owned entirely by the driver's pooled client.
// Establishment is retried per PoolConfig before the first handle is
// handed back.
//
// # Typed Operations
//
// Each operation issues exactly one command and converts the reply:
//
//	err := conn.Set(ctx, "greeting", "hello")
//	val, ok, err := conn.Get(ctx, "greeting")
//
// JSON persistence is generic. Missing keys are (nil, nil), never an
// error:
//
//	err := redis.SetJSON(ctx, conn, "user:1", user)
//	got, err := redis.GetJSON[User](ctx, conn, "user:1")
//
// TypedStore scopes JSON operations under a key prefix:
//
//	store := redis.NewTypedStore[Session](conn, "sessions")
//	err := store.Save(ctx, "abc", &session, time.Hour)
package redis
