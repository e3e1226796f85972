/*
Package consensus provides the proof-of-work difficulty and block reward
arithmetic used when indexing a Cuckatoo/Cuckaroo family chain.

Every function in this package is a pure calculation over its arguments. There
is no shared state, so values can be computed concurrently without any
synchronization.

READING AND NOTES

- Articles
[Cuckoo Cycle](https://github.com/tromp/cuckoo) - John Tromp
[Grin Emission Rate](https://docs.grin.mw/wiki/miscellaneous/grin-emission-rate/) - Grin Docs
[Difficulty](https://en.bitcoin.it/wiki/Difficulty) - Bitcoin Wiki
*/
package consensus
