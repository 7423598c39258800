// Package museum queries the Metropolitan Museum collection API for an
// artist's objects and counts the subject tags attached to them.
//
// Object payloads can be cached in a small SQLite database so that repeated
// topic runs only hit the API for objects not seen before.
package museum
