/*
Package namegen provides an in-memory, order-2 (trigram) Markov chain for
generating plausible-looking names from a corpus of real ones.

A Generator is trained on a list of names, learns which symbol tends to follow
each ordered pair of symbols, and then walks those statistics to produce new
names. It also tracks the names it has handed out so callers can ask for names
that are neither part of the training corpus nor already generated in the
current session.

A Generator is not safe for concurrent use. Callers that train or generate on a
background goroutine must own the instance for the duration of the call.
*/
package namegen
