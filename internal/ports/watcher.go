package ports

// Watcher monitors a labeled corpus directory for file changes so the app can
// retrain changed samples. The adapter (fsnotify) must filter out editor
// droppings and hidden directories before invoking onChange. Only one Watch
// call should be active at a time.
type Watcher interface {
	// Watch starts monitoring corpusPath recursively. onChange is called
	// with the absolute path of each changed file. The callback may be
	// invoked from any goroutine. Returns an error if the directory does
	// not exist or permissions are insufficient.
	Watch(corpusPath string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
