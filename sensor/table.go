package sensor

import (
	"github.com/fen-lake/st2mqtt/smartthings"
)

// thermostatCapabilities is the capability set of a full thermostat; most
// thermostat-adjacent sensors are suppressed when the thermostat entity
// already covers the device.
var thermostatCapabilities = []smartthings.Capability{
	smartthings.CapabilityTemperatureMeasurement,
	smartthings.CapabilityThermostatHeatingSetpoint,
	smartthings.CapabilityThermostatMode,
}

// Table is the registry of every capability/attribute pair surfaced as a
// sensor. Lookups are by exact key; absence means the attribute is not a
// sensor. It is populated once and never mutated.
var Table = map[smartthings.Capability]map[smartthings.Attribute][]Descriptor{
	smartthings.CapabilityActivityLightingMode: {
		smartthings.AttributeLightingMode: {{
			Key:            string(smartthings.AttributeLightingMode),
			TranslationKey: "lighting_mode",
			EntityCategory: CategoryDiagnostic,
		}},
	},
	smartthings.CapabilityAirConditionerMode: {
		smartthings.AttributeAirConditionerMode: {{
			Key:            string(smartthings.AttributeAirConditionerMode),
			TranslationKey: "air_conditioner_mode",
			EntityCategory: CategoryDiagnostic,
			CapabilityIgnoreList: [][]smartthings.Capability{{
				smartthings.CapabilityTemperatureMeasurement,
				smartthings.CapabilityThermostatCoolingSetpoint,
			}},
		}},
	},
	smartthings.CapabilityAirQualitySensor: {
		smartthings.AttributeAirQuality: {{
			Key:            string(smartthings.AttributeAirQuality),
			TranslationKey: "air_quality",
			Unit:           UnitCAQI,
			StateClass:     StateClassMeasurement,
		}},
	},
	smartthings.CapabilityAlarm: {
		smartthings.AttributeAlarm: {{
			Key:            string(smartthings.AttributeAlarm),
			TranslationKey: "alarm",
			Options:        []string{"both", "strobe", "siren", "off"},
			DeviceClass:    DeviceClassEnum,
		}},
	},
	smartthings.CapabilityAudioVolume: {
		smartthings.AttributeVolume: {{
			Key:            string(smartthings.AttributeVolume),
			TranslationKey: "audio_volume",
			Unit:           UnitPercent,
			Deprecated:     volumeDeprecated,
		}},
	},
	smartthings.CapabilityBattery: {
		smartthings.AttributeBattery: {{
			Key:            string(smartthings.AttributeBattery),
			Unit:           UnitPercent,
			DeviceClass:    DeviceClassBattery,
			EntityCategory: CategoryDiagnostic,
		}},
	},
	smartthings.CapabilityBodyMassIndexMeasurement: {
		smartthings.AttributeBmiMeasurement: {{
			Key:            string(smartthings.AttributeBmiMeasurement),
			TranslationKey: "body_mass_index",
			Unit:           UnitKilogramPerM2,
			StateClass:     StateClassMeasurement,
		}},
	},
	smartthings.CapabilityBodyWeightMeasurement: {
		smartthings.AttributeBodyWeightMeasurement: {{
			Key:            string(smartthings.AttributeBodyWeightMeasurement),
			TranslationKey: "body_weight",
			Unit:           UnitKilogram,
			DeviceClass:    DeviceClassWeight,
			StateClass:     StateClassMeasurement,
		}},
	},
	smartthings.CapabilityCarbonDioxideMeasurement: {
		smartthings.AttributeCarbonDioxide: {{
			Key:         string(smartthings.AttributeCarbonDioxide),
			Unit:        UnitPPM,
			DeviceClass: DeviceClassCO2,
			StateClass:  StateClassMeasurement,
		}},
	},
	smartthings.CapabilityCarbonMonoxideDetector: {
		smartthings.AttributeCarbonMonoxide: {{
			Key:            string(smartthings.AttributeCarbonMonoxide),
			TranslationKey: "carbon_monoxide_detector",
			Options:        []string{"detected", "clear", "tested"},
			DeviceClass:    DeviceClassEnum,
		}},
	},
	smartthings.CapabilityCarbonMonoxideMeasurement: {
		smartthings.AttributeCarbonMonoxideLevel: {{
			Key:         string(smartthings.AttributeCarbonMonoxideLevel),
			Unit:        UnitPPM,
			DeviceClass: DeviceClassCO,
			StateClass:  StateClassMeasurement,
		}},
	},
	smartthings.CapabilityDishwasherOperatingState: {
		smartthings.AttributeMachineState: {{
			Key:            string(smartthings.AttributeMachineState),
			TranslationKey: "dishwasher_machine_state",
			Options:        washerOptions,
			DeviceClass:    DeviceClassEnum,
		}},
		smartthings.AttributeDishwasherJobState: {{
			Key:            string(smartthings.AttributeDishwasherJobState),
			TranslationKey: "dishwasher_job_state",
			Options: []string{
				"air_wash", "cooling", "drying", "finish", "pre_drain",
				"pre_wash", "rinse", "spin", "wash", "wrinkle_prevent",
			},
			DeviceClass: DeviceClassEnum,
			Value:       mapped(jobStateMap),
		}},
		smartthings.AttributeCompletionTime: {{
			Key:            string(smartthings.AttributeCompletionTime),
			TranslationKey: "completion_time",
			DeviceClass:    DeviceClassTimestamp,
			Value:          parseTimestamp,
		}},
	},
	smartthings.CapabilityDryerMode: {
		smartthings.AttributeDryerMode: {{
			Key:            string(smartthings.AttributeDryerMode),
			TranslationKey: "dryer_mode",
			EntityCategory: CategoryDiagnostic,
		}},
	},
	smartthings.CapabilityDryerOperatingState: {
		smartthings.AttributeMachineState: {{
			Key:            string(smartthings.AttributeMachineState),
			TranslationKey: "dryer_machine_state",
			Options:        washerOptions,
			DeviceClass:    DeviceClassEnum,
		}},
		smartthings.AttributeDryerJobState: {{
			Key:            string(smartthings.AttributeDryerJobState),
			TranslationKey: "dryer_job_state",
			Options: []string{
				"cooling", "delay_wash", "drying", "finished", "none",
				"refreshing", "weight_sensing", "wrinkle_prevent",
				"dehumidifying", "ai_drying", "sanitizing", "internal_care",
				"freeze_protection", "continuous_dehumidifying",
				"thawing_frozen_inside",
			},
			DeviceClass: DeviceClassEnum,
			Value:       mapped(jobStateMap),
		}},
		smartthings.AttributeCompletionTime: {{
			Key:            string(smartthings.AttributeCompletionTime),
			TranslationKey: "completion_time",
			DeviceClass:    DeviceClassTimestamp,
			Value:          parseTimestamp,
		}},
	},
	smartthings.CapabilityDustSensor: {
		smartthings.AttributeDustLevel: {{
			Key:         string(smartthings.AttributeDustLevel),
			DeviceClass: DeviceClassPM10,
			Unit:        UnitMicrogramsPerM3,
			StateClass:  StateClassMeasurement,
		}},
		smartthings.AttributeFineDustLevel: {{
			Key:         string(smartthings.AttributeFineDustLevel),
			DeviceClass: DeviceClassPM25,
			Unit:        UnitMicrogramsPerM3,
			StateClass:  StateClassMeasurement,
		}},
	},
	smartthings.CapabilityEnergyMeter: {
		smartthings.AttributeEnergy: {{
			Key:         string(smartthings.AttributeEnergy),
			Unit:        UnitKilowattHour,
			DeviceClass: DeviceClassEnergy,
			StateClass:  StateClassTotalIncreasing,
		}},
	},
	smartthings.CapabilityEquivalentCarbonDioxide: {
		smartthings.AttributeEquivalentCarbonDioxide: {{
			Key:            string(smartthings.AttributeEquivalentCarbonDioxide),
			TranslationKey: "equivalent_carbon_dioxide",
			Unit:           UnitPPM,
			DeviceClass:    DeviceClassCO2,
			StateClass:     StateClassMeasurement,
		}},
	},
	smartthings.CapabilityFormaldehydeMeasurement: {
		smartthings.AttributeFormaldehydeLevel: {{
			Key:            string(smartthings.AttributeFormaldehydeLevel),
			TranslationKey: "formaldehyde",
			Unit:           UnitPPM,
			StateClass:     StateClassMeasurement,
		}},
	},
	smartthings.CapabilityGasMeter: {
		smartthings.AttributeGasMeter: {{
			Key:            string(smartthings.AttributeGasMeter),
			TranslationKey: "gas_meter",
			Unit:           UnitKilowattHour,
			DeviceClass:    DeviceClassEnergy,
			StateClass:     StateClassMeasurement,
		}},
		smartthings.AttributeGasMeterCalorific: {{
			Key:            string(smartthings.AttributeGasMeterCalorific),
			TranslationKey: "gas_meter_calorific",
		}},
		smartthings.AttributeGasMeterTime: {{
			Key:            string(smartthings.AttributeGasMeterTime),
			TranslationKey: "gas_meter_time",
			DeviceClass:    DeviceClassTimestamp,
			Value:          parseTimestamp,
		}},
		smartthings.AttributeGasMeterVolume: {{
			Key:         string(smartthings.AttributeGasMeterVolume),
			Unit:        UnitCubicMeter,
			DeviceClass: DeviceClassGas,
			StateClass:  StateClassMeasurement,
		}},
	},
	smartthings.CapabilityIlluminanceMeasurement: {
		smartthings.AttributeIlluminance: {{
			Key:         string(smartthings.AttributeIlluminance),
			Unit:        UnitLux,
			DeviceClass: DeviceClassIlluminance,
			StateClass:  StateClassMeasurement,
		}},
	},
	smartthings.CapabilityInfraredLevel: {
		smartthings.AttributeInfraredLevel: {{
			Key:            string(smartthings.AttributeInfraredLevel),
			TranslationKey: "infrared_level",
			Unit:           UnitPercent,
			StateClass:     StateClassMeasurement,
		}},
	},
	smartthings.CapabilityMediaInputSource: {
		smartthings.AttributeInputSource: {{
			Key:              string(smartthings.AttributeInputSource),
			TranslationKey:   "media_input_source",
			DeviceClass:      DeviceClassEnum,
			OptionsAttribute: smartthings.AttributeSupportedInputSources,
			Value:            lowercased,
			Deprecated:       mediaPlayer,
		}},
	},
	smartthings.CapabilityMediaPlaybackRepeat: {
		smartthings.AttributePlaybackRepeatMode: {{
			Key:            string(smartthings.AttributePlaybackRepeatMode),
			TranslationKey: "media_playback_repeat",
			Deprecated:     mediaPlayer,
		}},
	},
	smartthings.CapabilityMediaPlaybackShuffle: {
		smartthings.AttributePlaybackShuffle: {{
			Key:            string(smartthings.AttributePlaybackShuffle),
			TranslationKey: "media_playback_shuffle",
			Deprecated:     mediaPlayer,
		}},
	},
	smartthings.CapabilityMediaPlayback: {
		smartthings.AttributePlaybackStatus: {{
			Key:            string(smartthings.AttributePlaybackStatus),
			TranslationKey: "media_playback_status",
			Options: []string{
				"paused", "playing", "stopped", "fast_forwarding",
				"rewinding", "buffering",
			},
			DeviceClass: DeviceClassEnum,
			Value:       mapped(mediaPlaybackStateMap),
			Deprecated:  mediaPlayer,
		}},
	},
	smartthings.CapabilityOdorSensor: {
		smartthings.AttributeOdorLevel: {{
			Key:            string(smartthings.AttributeOdorLevel),
			TranslationKey: "odor_sensor",
		}},
	},
	smartthings.CapabilityOvenMode: {
		smartthings.AttributeOvenMode: {{
			Key:            string(smartthings.AttributeOvenMode),
			TranslationKey: "oven_mode",
			EntityCategory: CategoryDiagnostic,
			Options:        values(ovenModeMap),
			DeviceClass:    DeviceClassEnum,
			Value:          mapped(ovenModeMap),
		}},
	},
	smartthings.CapabilityOvenOperatingState: {
		smartthings.AttributeMachineState: {{
			Key:            string(smartthings.AttributeMachineState),
			TranslationKey: "oven_machine_state",
			Options:        []string{"ready", "running", "paused"},
			DeviceClass:    DeviceClassEnum,
		}},
		smartthings.AttributeOvenJobState: {{
			Key:            string(smartthings.AttributeOvenJobState),
			TranslationKey: "oven_job_state",
			Options: []string{
				"cleaning", "cooking", "cooling", "draining", "preheat",
				"ready", "rinsing", "finished", "scheduled_start", "warming",
				"defrosting", "sensing", "searing", "fast_preheat",
				"scheduled_end", "stone_heating", "time_hold_preheat",
			},
			DeviceClass: DeviceClassEnum,
			Value:       mapped(ovenJobStateMap),
		}},
		smartthings.AttributeCompletionTime: {{
			Key:            string(smartthings.AttributeCompletionTime),
			TranslationKey: "completion_time",
			DeviceClass:    DeviceClassTimestamp,
			Value:          parseTimestamp,
		}},
	},
	smartthings.CapabilityOvenSetpoint: {
		smartthings.AttributeOvenSetpoint: {{
			Key:                string(smartthings.AttributeOvenSetpoint),
			TranslationKey:     "oven_setpoint",
			DeviceClass:        DeviceClassTemperature,
			UseTemperatureUnit: true,
			Value:              ovenSetpoint,
		}},
	},
	smartthings.CapabilityPowerConsumptionReport: {
		smartthings.AttributePowerConsumption: {
			{
				Key:                       "energy_meter",
				StateClass:                StateClassTotalIncreasing,
				DeviceClass:               DeviceClassEnergy,
				Unit:                      UnitKilowattHour,
				Value:                     scaledSubField("energy", 1000),
				SuggestedDisplayPrecision: 2,
				Exists:                    hasSubField("energy"),
			},
			{
				Key:                       "power_meter",
				StateClass:                StateClassMeasurement,
				DeviceClass:               DeviceClassPower,
				Unit:                      UnitWatt,
				Value:                     subField("power"),
				ExtraStateAttributes:      powerAttributes,
				SuggestedDisplayPrecision: 2,
				Exists:                    hasSubField("power"),
			},
			{
				Key:                       "deltaEnergy_meter",
				TranslationKey:            "energy_difference",
				StateClass:                StateClassTotal,
				DeviceClass:               DeviceClassEnergy,
				Unit:                      UnitKilowattHour,
				Value:                     scaledSubField("deltaEnergy", 1000),
				SuggestedDisplayPrecision: 2,
				Exists:                    hasSubField("deltaEnergy"),
			},
			{
				Key:                       "powerEnergy_meter",
				TranslationKey:            "power_energy",
				StateClass:                StateClassTotalIncreasing,
				DeviceClass:               DeviceClassEnergy,
				Unit:                      UnitKilowattHour,
				Value:                     scaledSubField("powerEnergy", 1000),
				SuggestedDisplayPrecision: 2,
				Exists:                    hasSubField("powerEnergy"),
			},
			{
				Key:                       "energySaved_meter",
				TranslationKey:            "energy_saved",
				StateClass:                StateClassTotalIncreasing,
				DeviceClass:               DeviceClassEnergy,
				Unit:                      UnitKilowattHour,
				Value:                     scaledSubField("energySaved", 1000),
				SuggestedDisplayPrecision: 2,
				Exists:                    hasSubField("energySaved"),
			},
		},
	},
	smartthings.CapabilityPowerMeter: {
		smartthings.AttributePower: {{
			Key:         string(smartthings.AttributePower),
			Unit:        UnitWatt,
			DeviceClass: DeviceClassPower,
			StateClass:  StateClassMeasurement,
		}},
	},
	smartthings.CapabilityPowerSource: {
		smartthings.AttributePowerSource: {{
			Key:            string(smartthings.AttributePowerSource),
			TranslationKey: "power_source",
			EntityCategory: CategoryDiagnostic,
		}},
	},
	smartthings.CapabilityRefrigerationSetpoint: {
		smartthings.AttributeRefrigerationSetpoint: {{
			Key:            string(smartthings.AttributeRefrigerationSetpoint),
			TranslationKey: "refrigeration_setpoint",
			DeviceClass:    DeviceClassTemperature,
		}},
	},
	smartthings.CapabilityRelativeBrightness: {
		smartthings.AttributeBrightnessIntensity: {{
			Key:            string(smartthings.AttributeBrightnessIntensity),
			TranslationKey: "brightness_intensity",
			StateClass:     StateClassMeasurement,
		}},
	},
	smartthings.CapabilityRelativeHumidityMeasurement: {
		smartthings.AttributeHumidity: {{
			Key:         string(smartthings.AttributeHumidity),
			Unit:        UnitPercent,
			DeviceClass: DeviceClassHumidity,
			StateClass:  StateClassMeasurement,
		}},
	},
	smartthings.CapabilityRobotCleanerCleaningMode: {
		smartthings.AttributeRobotCleanerCleaningMode: {{
			Key:            string(smartthings.AttributeRobotCleanerCleaningMode),
			TranslationKey: "robot_cleaner_cleaning_mode",
			Options:        []string{"auto", "part", "repeat", "manual", "stop", "map"},
			DeviceClass:    DeviceClassEnum,
			EntityCategory: CategoryDiagnostic,
		}},
	},
	smartthings.CapabilityRobotCleanerMovement: {
		smartthings.AttributeRobotCleanerMovement: {{
			Key:            string(smartthings.AttributeRobotCleanerMovement),
			TranslationKey: "robot_cleaner_movement",
			Options: []string{
				"homing", "idle", "charging", "alarm", "off", "reserve",
				"point", "after", "cleaning", "pause",
			},
			DeviceClass: DeviceClassEnum,
			Value:       mapped(robotCleanerMovementMap),
		}},
	},
	smartthings.CapabilityRobotCleanerTurboMode: {
		smartthings.AttributeRobotCleanerTurboMode: {{
			Key:            string(smartthings.AttributeRobotCleanerTurboMode),
			TranslationKey: "robot_cleaner_turbo_mode",
			Options:        []string{"on", "off", "silence", "extra_silence"},
			DeviceClass:    DeviceClassEnum,
			Value:          mapped(robotCleanerTurboModeMap),
			EntityCategory: CategoryDiagnostic,
		}},
	},
	smartthings.CapabilitySignalStrength: {
		smartthings.AttributeLqi: {{
			Key:            string(smartthings.AttributeLqi),
			TranslationKey: "link_quality",
			StateClass:     StateClassMeasurement,
			EntityCategory: CategoryDiagnostic,
		}},
		smartthings.AttributeRssi: {{
			Key:            string(smartthings.AttributeRssi),
			DeviceClass:    DeviceClassSignalStrength,
			StateClass:     StateClassMeasurement,
			EntityCategory: CategoryDiagnostic,
		}},
	},
	smartthings.CapabilitySmokeDetector: {
		smartthings.AttributeSmoke: {{
			Key:            string(smartthings.AttributeSmoke),
			TranslationKey: "smoke_detector",
			Options:        []string{"detected", "clear", "tested"},
			DeviceClass:    DeviceClassEnum,
		}},
	},
	smartthings.CapabilityTemperatureMeasurement: {
		smartthings.AttributeTemperature: {{
			Key:         string(smartthings.AttributeTemperature),
			DeviceClass: DeviceClassTemperature,
			StateClass:  StateClassMeasurement,
		}},
	},
	smartthings.CapabilityThermostatCoolingSetpoint: {
		smartthings.AttributeCoolingSetpoint: {{
			Key:            string(smartthings.AttributeCoolingSetpoint),
			TranslationKey: "thermostat_cooling_setpoint",
			DeviceClass:    DeviceClassTemperature,
			CapabilityIgnoreList: [][]smartthings.Capability{
				{
					smartthings.CapabilityAirConditionerFanMode,
					smartthings.CapabilityTemperatureMeasurement,
					smartthings.CapabilityAirConditionerMode,
				},
				thermostatCapabilities,
			},
		}},
	},
	smartthings.CapabilityThermostatFanMode: {
		smartthings.AttributeThermostatFanMode: {{
			Key:                  string(smartthings.AttributeThermostatFanMode),
			TranslationKey:       "thermostat_fan_mode",
			EntityCategory:       CategoryDiagnostic,
			CapabilityIgnoreList: [][]smartthings.Capability{thermostatCapabilities},
		}},
	},
	smartthings.CapabilityThermostatHeatingSetpoint: {
		smartthings.AttributeHeatingSetpoint: {{
			Key:                  string(smartthings.AttributeHeatingSetpoint),
			TranslationKey:       "thermostat_heating_setpoint",
			DeviceClass:          DeviceClassTemperature,
			EntityCategory:       CategoryDiagnostic,
			CapabilityIgnoreList: [][]smartthings.Capability{thermostatCapabilities},
		}},
	},
	smartthings.CapabilityThermostatMode: {
		smartthings.AttributeThermostatMode: {{
			Key:                  string(smartthings.AttributeThermostatMode),
			TranslationKey:       "thermostat_mode",
			EntityCategory:       CategoryDiagnostic,
			CapabilityIgnoreList: [][]smartthings.Capability{thermostatCapabilities},
		}},
	},
	smartthings.CapabilityThermostatOperatingState: {
		smartthings.AttributeThermostatOperatingState: {{
			Key:                  string(smartthings.AttributeThermostatOperatingState),
			TranslationKey:       "thermostat_operating_state",
			CapabilityIgnoreList: [][]smartthings.Capability{thermostatCapabilities},
		}},
	},
	// The thermostatSetpoint capability itself is deprecated upstream.
	smartthings.CapabilityThermostatSetpoint: {
		smartthings.AttributeThermostatSetpoint: {{
			Key:            string(smartthings.AttributeThermostatSetpoint),
			TranslationKey: "thermostat_setpoint",
			DeviceClass:    DeviceClassTemperature,
			EntityCategory: CategoryDiagnostic,
		}},
	},
	smartthings.CapabilityThreeAxis: {
		smartthings.AttributeThreeAxis: {
			{Key: "x_coordinate", TranslationKey: "x_coordinate", Value: axis(0)},
			{Key: "y_coordinate", TranslationKey: "y_coordinate", Value: axis(1)},
			{Key: "z_coordinate", TranslationKey: "z_coordinate", Value: axis(2)},
		},
	},
	smartthings.CapabilityTvChannel: {
		smartthings.AttributeTvChannel: {{
			Key:            string(smartthings.AttributeTvChannel),
			TranslationKey: "tv_channel",
		}},
		smartthings.AttributeTvChannelName: {{
			Key:            string(smartthings.AttributeTvChannelName),
			TranslationKey: "tv_channel_name",
		}},
	},
	smartthings.CapabilityTvocMeasurement: {
		smartthings.AttributeTvocLevel: {{
			Key:         string(smartthings.AttributeTvocLevel),
			DeviceClass: DeviceClassVOC,
			Unit:        UnitPPM,
			StateClass:  StateClassMeasurement,
		}},
	},
	smartthings.CapabilityUltravioletIndex: {
		smartthings.AttributeUltravioletIndex: {{
			Key:            string(smartthings.AttributeUltravioletIndex),
			TranslationKey: "uv_index",
			StateClass:     StateClassMeasurement,
		}},
	},
	smartthings.CapabilityVeryFineDustSensor: {
		smartthings.AttributeVeryFineDustLevel: {{
			Key:         string(smartthings.AttributeVeryFineDustLevel),
			Unit:        UnitMicrogramsPerM3,
			DeviceClass: DeviceClassPM1,
			StateClass:  StateClassMeasurement,
		}},
	},
	smartthings.CapabilityVoltageMeasurement: {
		smartthings.AttributeVoltage: {{
			Key:         string(smartthings.AttributeVoltage),
			DeviceClass: DeviceClassVoltage,
			StateClass:  StateClassMeasurement,
		}},
	},
	smartthings.CapabilityWasherMode: {
		smartthings.AttributeWasherMode: {{
			Key:            string(smartthings.AttributeWasherMode),
			TranslationKey: "washer_mode",
			EntityCategory: CategoryDiagnostic,
		}},
	},
	smartthings.CapabilityWasherOperatingState: {
		smartthings.AttributeMachineState: {{
			Key:            string(smartthings.AttributeMachineState),
			TranslationKey: "washer_machine_state",
			Options:        washerOptions,
			DeviceClass:    DeviceClassEnum,
		}},
		smartthings.AttributeWasherJobState: {{
			Key:            string(smartthings.AttributeWasherJobState),
			TranslationKey: "washer_job_state",
			Options: []string{
				"air_wash", "ai_rinse", "ai_spin", "ai_wash", "cooling",
				"delay_wash", "drying", "finish", "none", "pre_wash",
				"rinse", "spin", "wash", "weight_sensing", "wrinkle_prevent",
				"freeze_protection",
			},
			DeviceClass: DeviceClassEnum,
			Value:       mapped(jobStateMap),
		}},
		smartthings.AttributeCompletionTime: {{
			Key:            string(smartthings.AttributeCompletionTime),
			TranslationKey: "completion_time",
			DeviceClass:    DeviceClassTimestamp,
			Value:          parseTimestamp,
		}},
	},
}
