/*
Package corpus acquires the name lists used to train and seed name generation.

Name lists come either from plain text, read as whitespace-delimited tokens or
as one name per line, or from a SQLite-backed Store that keeps any number of
named lists (for example "first" and "last") in a single database.
*/
package corpus
