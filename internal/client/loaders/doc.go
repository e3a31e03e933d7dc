// Package loaders contains the view-model components that fetch remote data
// and expose loading/error/data state to the presentation layer. Loaders
// catch every failure at this boundary and convert it to an error message;
// nothing propagates further up. Each load carries a generation number so a
// response that was superseded by a newer load is discarded silently.
package loaders
