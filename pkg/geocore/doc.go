// Package geocore provides types, interfaces, and request builders for
// working with the Geocore geospatial REST service.
//
// # Overview
//
// The geocore package defines the resource client interfaces (ObjectsClient,
// PlacesClient, ItemsClient, ...), the layered query builders, the response
// envelope handling and the error types. A concrete client is provided by the
// geoclient package, which wires configuration, transport and session state.
//
//	cli, err := geoclient.New(&geocore.Config{
//	  BaseURL:   "https://api.geocore.jp/api",
//	  ProjectID: "PRO-TEST-1",
//	})
//	if err != nil { log.Fatal(err) }
//
//	if _, err := cli.Login(ctx, "USE-TEST-1-ADMIN-1", password); err != nil { log.Fatal(err) }
//
//	places, err := cli.Places().Query().
//	  SetNum(10).
//	  SetCenter(35.671018, 139.724336).
//	  Nearest(ctx)
//
// # Builders
//
// Builders embed one another (Operation, Query, TaggableQuery) so that every
// setter returns the concrete builder and can be chained. A terminal method
// (Get, All, Count, Nearest, ...) issues exactly one call and may be invoked
// again; a terminal called without a required setter fails with a
// *MissingParameterError before touching the network.
//
// # Errors
//
// Every call returns exactly one of the envelope result, *ServiceError (the
// service answered with an "error" envelope), *HTTPError (non-2xx status),
// *MalformedEnvelopeError or *TransportError. Resource clients wrap them with
// context; use errors.As or the Is* helpers to branch on them.
package geocore
