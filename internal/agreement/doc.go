// Package agreement measures how consistently the annotation sources tag a
// video and judge its host.
//
// Tabulate intersects the tag sets of every source per video. Each shared tag
// is credited with the video's host verdict: all sources agree, all disagree,
// or mixed. The verdict is a property of the whole video, so every shared tag
// of one video receives the same verdict. Analyze then ranks tags seen on
// enough videos into perfect agreement, perfect disagreement and polarizing
// lists, and reports how many videos had a unanimous host verdict overall.
package agreement
