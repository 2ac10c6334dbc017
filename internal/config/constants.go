package config

import "time"

// Base application details
const AppName = "quill"
const Version = "0.3.0"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

const DefaultTabWidth = 4
const MinTabWidth = 2
const MaxTabWidth = 16
const DefaultScrollOff = 3
const DefaultMaxHistory = 200
const DefaultTheme = "Quill Light"
const SystemClipboard = true
