//go:build !recents_debug

package recents

const debugging = false

func assert(bool, string) {}
