// Package language maps between ISO 639 language code forms and the tag
// conventions found in media container metadata.
package language
