package srclist

// LineEnding is the native line separator written after the header and each path.
const LineEnding = "\r\n"
