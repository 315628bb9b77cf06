// Package topic defines the topic records the layouts consume and the
// text helpers that derive display strings from them.
//
// Topics are supplied wholesale by an upstream transcription or topic
// extraction service after every audio chunk. The layouts only ever read
// them; [Normalize] produces the copies they work on, substituting a
// synthetic identity (topic-<index>) when an id is missing or repeated so a
// malformed record is still drawn rather than dropped.
//
// # Files
//
// [ReadFile] loads a topic list from JSON (a bare array or a
// {"event":"topics","topics":[...]} envelope) or from TOML ([[topics]]
// tables). [ReadSteps] loads a recorded sequence of topic lists for replay.
package topic
