// Package discovery keeps the ring membership in sync with an external
// service catalog. A Resolver lists the healthy members of a named
// service, and a Watcher polls the resolver on an interval, joining
// members that appeared and removing members that went away.
//
// The only resolver shipped here talks to consul. Resolve errors are
// logged and the previous membership is kept, so a catalog outage never
// empties the ring.
package discovery
