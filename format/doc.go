// Package format names the document formats sfmt tools read and write.
package format
