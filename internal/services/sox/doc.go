// Package sox wraps the SoX command-line tool, the external collaborator that
// cuts a sample range out of an audio image and embeds Vorbis comments into
// the resulting track file.
package sox
