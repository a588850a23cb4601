// Package instance is the data-set driver around minrange: it reads pipe
// networks from a whitespace-separated integer stream and writes answers.
//
// Input format, repeated per data set:
//
//	n m
//	v1 v2 w      (m lines)
//
// A data set "0 0" terminates the stream and is never solved. A stream that
// simply ends between data sets is accepted as well.
//
// Every data set is validated with minrange.Validate before it is returned,
// so malformed input never reaches the search. Errors name the 1-based data
// set index.
//
// Output formats:
//   - plain: one integer per line (range or -1), in input order;
//   - json:  an array of per-data-set objects including the chosen pipes;
//   - table: an aligned text table.
package instance
