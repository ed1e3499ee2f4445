package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidPeriod is returned when the target period does not look like YYYY.MM.
	ErrInvalidPeriod = zerr.New("target period must look like YYYY.MM, e.g. 2025.03")

	// ErrEmptySelection is returned when no entity is selected for export.
	ErrEmptySelection = zerr.New("select at least one entity")

	// ErrUnknownEntity is returned when a selected entity code is not part of the catalog.
	ErrUnknownEntity = zerr.New("entity is not part of the catalog")

	// ErrDuplicateEntity is returned when the catalog lists the same entity code twice.
	ErrDuplicateEntity = zerr.New("duplicate entity code")

	// ErrInvalidBatchSize is returned when the select-all batch size is negative.
	ErrInvalidBatchSize = zerr.New("select batch size must not be negative")

	// ErrInvalidIterations is returned when the number of rows to export is negative.
	ErrInvalidIterations = zerr.New("iterations must not be negative")

	// ErrPreconditionsUnconfirmed is returned when the operator did not confirm
	// being logged in and ready to focus the target application.
	ErrPreconditionsUnconfirmed = zerr.New("confirm you are logged into STRAVIS and will focus its window (--yes)")

	// ErrRunInProgress is returned when an automation run is requested while another is active.
	ErrRunInProgress = zerr.New("an automation run is already in progress")

	// ErrWindowNotFound is returned when a top-level window did not appear in time.
	ErrWindowNotFound = zerr.New("window not found")

	// ErrControlNotFound is returned when a control did not appear within its retry window.
	ErrControlNotFound = zerr.New("control not found")

	// ErrPeriodControlNotFound is returned when no period entry matches the period filter pattern.
	ErrPeriodControlNotFound = zerr.New("no period entry matching the period filter pattern")

	// ErrSaveFolderNotFound is returned when the Save As dialog does not list the target folder.
	ErrSaveFolderNotFound = zerr.New("target folder not found in the Save As dialog")

	// ErrTabNotActive is returned when a ribbon tab does not become active in time.
	ErrTabNotActive = zerr.New("ribbon tab not active")

	// ErrNoChange is returned when the UI did not react to an input that must change it.
	ErrNoChange = zerr.New("user interface did not change")

	// ErrDialogStillOpen is returned when a modal dialog did not close in time.
	ErrDialogStillOpen = zerr.New("dialog did not close in time")

	// ErrActionFailed is returned when clicking, invoking or focusing a control fails.
	ErrActionFailed = zerr.New("control action failed")

	// ErrInputFailed is returned when synthetic keyboard input cannot be injected.
	ErrInputFailed = zerr.New("keyboard input failed")

	// ErrUnsupportedKey is returned when a key or character has no virtual-key mapping.
	ErrUnsupportedKey = zerr.New("unsupported key")

	// ErrUnsupportedPlatform is returned when UI automation is requested outside Windows.
	ErrUnsupportedPlatform = zerr.New("UI automation requires Windows")

	// ErrAutomationUnavailable is returned when the UI Automation client cannot be created.
	ErrAutomationUnavailable = zerr.New("UI Automation client unavailable")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file contains invalid values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidOutputMode is returned when --output-mode names no known renderer.
	ErrInvalidOutputMode = zerr.New("invalid output mode")

	// ErrInterrupted is returned when the operator aborts a run from the progress view.
	ErrInterrupted = zerr.New("run interrupted by the operator")

	// ErrAutomationFailed is returned when an automation run aborts.
	ErrAutomationFailed = zerr.New("automation failed")
)
