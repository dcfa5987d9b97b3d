// Package task manages background job queuing and processing. It provides
// asynchronous execution of long-running operations like bulk vocabulary
// imports, so they don't block HTTP request handling.
package task
