// Package remote provides an HTTP implementation of driven.AssetFetcher.
//
// Requests carry the configured User-Agent and are throttled by a token
// bucket shared by all callers of one Fetcher. The optional bearer token is
// sent only to the configured token hosts.
// file:// URIs are handed to a driven.AssetStore when one is configured.
package remote
