// Package signals turns a ChangeRecord into quality signals: a kind, a skill
// list, three scores and a tier. Every function here is pure and safe for
// concurrent use.
package signals
