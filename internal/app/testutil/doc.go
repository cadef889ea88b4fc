// Package testutil provides shared test doubles and fixtures for the
// migration packages.
//
//   - MockPostWriter: testify/mock document store that also keeps every
//     inserted post, so tests can count what a run wrote.
//   - MockPostSource: testify/mock WordPress connection.
//   - NewObservedLogger: zap logger whose output can be asserted on.
//   - Fixtures: WordPress rows, canonical posts and JSON files.
//
// # Usage
//
//	writer := testutil.NewMockPostWriter()
//	writer.On("InsertMany", mock.Anything, mock.Anything).Return(nil)
//
//	source := testutil.NewMockPostSource()
//	source.On("FetchPublishedPosts", mock.Anything).Return(testutil.ExampleRows, nil)
//	source.On("Close").Return(nil)
package testutil
