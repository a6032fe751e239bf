// Package themes reads the active presentation theme of a Drupal site.
//
// Two registries are provided: ConfigSyncRegistry parses the exported
// system.theme.yml of a configuration sync directory, and DrushRegistry asks
// a live site through drush. Neither caches; every ActiveTheme call reads the
// current value.
package themes
