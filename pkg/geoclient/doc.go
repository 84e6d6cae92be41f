// Package geoclient provides the primary entry point for constructing a
// Geocore client that implements the geocore.Client interface.
//
// It wires configuration, the HTTP transport and the session on top of the
// resource interfaces and builders defined in the geocore package.
//
// Quick start
//
//	cli, err := geoclient.NewWithPassword(ctx,
//	  "https://api.geocore.jp/api", "PRO-TEST-1",
//	  "USE-TEST-1-ADMIN-1", password)
//	if err != nil { log.Fatal(err) }
//
//	place, err := cli.Places().Get(ctx, "PLA-TEST-1-1")
//
// Or reuse a token:
//
//	cli, err := geoclient.NewWithToken("https://api.geocore.jp/api", "PRO-TEST-1", token)
//
// The session can be reconfigured at any time with Setup, Login and Logout;
// every request reads the current token when it is sent.
package geoclient
