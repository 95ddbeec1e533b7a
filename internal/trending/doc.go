// Package trending keeps an approximate top-k of submitted search queries over a
// sliding time window, backed by a HeavyKeeper sketch.
package trending
