//go:build recents_debug

package recents

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
